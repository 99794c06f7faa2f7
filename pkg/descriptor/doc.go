// Package descriptor reads the contents section of a package.xml into a
// ContentNode tree.
//
// The descriptor nests <target>, <dir> and <file> elements, each named by its
// name attribute:
//
//	<package>
//	  <contents>
//	    <target name="magelocal">
//	      <dir name="Foo">
//	        <dir name="Bar">
//	          <file name="config.xml" hash="..."/>
//	        </dir>
//	      </dir>
//	    </target>
//	  </contents>
//	</package>
//
// Targets and dirs become directory nodes, files become file nodes. Other
// elements are ignored. The contents node itself is anonymous.
package descriptor
